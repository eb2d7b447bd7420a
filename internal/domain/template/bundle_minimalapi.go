package template

import "github.com/archforge/archforge/internal/domain"

// MinimalAPIBundle returns a registry whose presentation layer is a single
// Minimal API route-group extension per entity.
func MinimalAPIBundle() *Registry {
	units := sharedUnits()
	units = append(units, minimalEndpointsUnit)
	return NewRegistry(units...)
}

var minimalEndpointsUnit = Unit{
	Layer:       domain.LayerPresentation,
	Kind:        KindEndpoint,
	PathPattern: "src/Presentation/Endpoints/{{EntityName}}Endpoints.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "EntityNamePlural", Source: SourceEntityName, Rule: FillPlural},
		{Name: "Route", Source: SourceEntityName, Rule: FillPluralSnake},
	},
	Body: `using {{Namespace}}.Domain.Entities;
using {{Namespace}}.Domain.Repositories;

namespace {{Namespace}}.Presentation.Endpoints;

public static class {{EntityName}}Endpoints
{
    public static IEndpointRouteBuilder Map{{EntityNamePlural}}(this IEndpointRouteBuilder app)
    {
        var group = app.MapGroup("/{{Route}}");

        group.MapGet("/{id:guid}", async (Guid id, I{{EntityName}}Repository repository, CancellationToken ct) =>
        {
            var entity = await repository.GetByIdAsync(id, ct);
            return entity is null ? Results.NotFound() : Results.Ok(entity);
        });

        group.MapGet("/", async (I{{EntityName}}Repository repository, CancellationToken ct) =>
            Results.Ok(await repository.ListAsync(ct)));

        group.MapPost("/", async ({{EntityName}} entity, I{{EntityName}}Repository repository, CancellationToken ct) =>
        {
            entity.Id = Guid.NewGuid();
            await repository.AddAsync(entity, ct);
            return Results.Created($"/{{Route}}/{entity.Id}", entity);
        });

        group.MapDelete("/{id:guid}", async (Guid id, I{{EntityName}}Repository repository, CancellationToken ct) =>
        {
            await repository.DeleteAsync(id, ct);
            return Results.NoContent();
        });

        return group;
    }
}
`,
}
