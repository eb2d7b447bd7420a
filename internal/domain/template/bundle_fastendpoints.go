package template

import "github.com/archforge/archforge/internal/domain"

// FastEndpointsBundle returns the default registry: one endpoint class per
// operation in the FastEndpoints style.
func FastEndpointsBundle() *Registry {
	units := sharedUnits()
	units = append(units, feGetEndpointUnit, feCreateEndpointUnit)
	return NewRegistry(units...)
}

var feGetEndpointUnit = Unit{
	Layer:       domain.LayerPresentation,
	Kind:        KindEndpoint,
	PathPattern: "src/Presentation/Endpoints/{{EntityNamePlural}}/Get{{EntityName}}Endpoint.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "EntityNamePlural", Source: SourceEntityName, Rule: FillPlural},
		{Name: "Route", Source: SourceEntityName, Rule: FillPluralSnake},
	},
	Body: `using FastEndpoints;
using {{Namespace}}.Domain.Entities;
using {{Namespace}}.Domain.Repositories;

namespace {{Namespace}}.Presentation.Endpoints.{{EntityNamePlural}};

public class Get{{EntityName}}Endpoint : EndpointWithoutRequest<{{EntityName}}>
{
    private readonly I{{EntityName}}Repository _repository;

    public Get{{EntityName}}Endpoint(I{{EntityName}}Repository repository)
        => _repository = repository;

    public override void Configure()
    {
        Get("/{{Route}}/{id}");
        AllowAnonymous();
    }

    public override async Task HandleAsync(CancellationToken ct)
    {
        var id = Route<Guid>("id");
        var entity = await _repository.GetByIdAsync(id, ct);
        if (entity is null)
        {
            await SendNotFoundAsync(ct);
            return;
        }
        await SendOkAsync(entity, ct);
    }
}
`,
}

var feCreateEndpointUnit = Unit{
	Layer:       domain.LayerPresentation,
	Kind:        KindEndpoint,
	PathPattern: "src/Presentation/Endpoints/{{EntityNamePlural}}/Create{{EntityName}}Endpoint.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "EntityNamePlural", Source: SourceEntityName, Rule: FillPlural},
		{Name: "Route", Source: SourceEntityName, Rule: FillPluralSnake},
	},
	Body: `using FastEndpoints;
using {{Namespace}}.Domain.Entities;
using {{Namespace}}.Domain.Repositories;

namespace {{Namespace}}.Presentation.Endpoints.{{EntityNamePlural}};

public class Create{{EntityName}}Endpoint : Endpoint<{{EntityName}}, {{EntityName}}>
{
    private readonly I{{EntityName}}Repository _repository;

    public Create{{EntityName}}Endpoint(I{{EntityName}}Repository repository)
        => _repository = repository;

    public override void Configure()
    {
        Post("/{{Route}}");
        AllowAnonymous();
    }

    public override async Task HandleAsync({{EntityName}} req, CancellationToken ct)
    {
        req.Id = Guid.NewGuid();
        await _repository.AddAsync(req, ct);
        await SendCreatedAtAsync<Get{{EntityName}}Endpoint>(new { id = req.Id }, req, cancellation: ct);
    }
}
`,
}
