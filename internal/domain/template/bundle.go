package template

import "github.com/archforge/archforge/internal/domain"

// Shared units used by every built-in bundle. The presentation endpoint
// units differ per bundle; everything below the presentation layer is
// identical FastEndpoints or Minimal API projects.

var entityUnit = Unit{
	Layer:       domain.LayerDomain,
	Kind:        KindEntity,
	PathPattern: "src/Domain/Entities/{{EntityName}}.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "PropertyLines", Source: SourceProperties, Rule: FillList,
			Line: "    public {{CsType}} {{Name}} { get; set; }"},
	},
	Body: `namespace {{Namespace}}.Domain.Entities;

public partial class {{EntityName}}
{
    public Guid Id { get; set; }

{{PropertyLines}}
}
`,
}

// entityRelationshipsUnit is only applicable to schemas that declare
// relationships; callers pre-filter it out otherwise.
var entityRelationshipsUnit = Unit{
	Layer:       domain.LayerDomain,
	Kind:        KindEntity,
	PathPattern: "src/Domain/Entities/{{EntityName}}.Relationships.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "NavigationLines", Source: SourceRelationships, Rule: FillList,
			Line: "    public {{NavType}} {{NavName}} { get; set; }{{NavInit}}"},
	},
	Body: `namespace {{Namespace}}.Domain.Entities;

public partial class {{EntityName}}
{
{{NavigationLines}}
}
`,
}

var repositoryInterfaceUnit = Unit{
	Layer:       domain.LayerDomain,
	Kind:        KindInterface,
	PathPattern: "src/Domain/Repositories/I{{EntityName}}Repository.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "EntityNamePlural", Source: SourceEntityName, Rule: FillPlural},
	},
	Body: `using {{Namespace}}.Domain.Entities;

namespace {{Namespace}}.Domain.Repositories;

public interface I{{EntityName}}Repository
{
    Task<{{EntityName}}?> GetByIdAsync(Guid id, CancellationToken ct = default);
    Task<IReadOnlyList<{{EntityName}}>> ListAsync(CancellationToken ct = default);
    Task AddAsync({{EntityName}} entity, CancellationToken ct = default);
    Task UpdateAsync({{EntityName}} entity, CancellationToken ct = default);
    Task DeleteAsync(Guid id, CancellationToken ct = default);
}
`,
}

var repositoryUnit = Unit{
	Layer:       domain.LayerInfrastructure,
	Kind:        KindImplementation,
	PathPattern: "src/Infrastructure/Repositories/{{EntityName}}Repository.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "EntityNamePlural", Source: SourceEntityName, Rule: FillPlural},
	},
	Body: `using Microsoft.EntityFrameworkCore;
using {{Namespace}}.Domain.Entities;
using {{Namespace}}.Domain.Repositories;
using {{Namespace}}.Infrastructure.Persistence;

namespace {{Namespace}}.Infrastructure.Repositories;

public class {{EntityName}}Repository : I{{EntityName}}Repository
{
    private readonly AppDbContext _db;

    public {{EntityName}}Repository(AppDbContext db) => _db = db;

    public async Task<{{EntityName}}?> GetByIdAsync(Guid id, CancellationToken ct = default)
        => await _db.Set<{{EntityName}}>().FirstOrDefaultAsync(e => e.Id == id, ct);

    public async Task<IReadOnlyList<{{EntityName}}>> ListAsync(CancellationToken ct = default)
        => await _db.Set<{{EntityName}}>().AsNoTracking().ToListAsync(ct);

    public async Task AddAsync({{EntityName}} entity, CancellationToken ct = default)
    {
        _db.Set<{{EntityName}}>().Add(entity);
        await _db.SaveChangesAsync(ct);
    }

    public async Task UpdateAsync({{EntityName}} entity, CancellationToken ct = default)
    {
        _db.Set<{{EntityName}}>().Update(entity);
        await _db.SaveChangesAsync(ct);
    }

    public async Task DeleteAsync(Guid id, CancellationToken ct = default)
    {
        var entity = await _db.Set<{{EntityName}}>().FirstOrDefaultAsync(e => e.Id == id, ct);
        if (entity is not null)
        {
            _db.Set<{{EntityName}}>().Remove(entity);
            await _db.SaveChangesAsync(ct);
        }
    }
}
`,
}

var configurationUnit = Unit{
	Layer:       domain.LayerInfrastructure,
	Kind:        KindConfiguration,
	PathPattern: "src/Infrastructure/Persistence/Configurations/{{EntityName}}Configuration.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "TableName", Source: SourceEntityName, Rule: FillPlural},
		{Name: "PropertyConfigLines", Source: SourceProperties, Rule: FillList,
			Line: "        builder.Property(e => e.{{Name}}).IsRequired();"},
	},
	Body: `using Microsoft.EntityFrameworkCore;
using Microsoft.EntityFrameworkCore.Metadata.Builders;
using {{Namespace}}.Domain.Entities;

namespace {{Namespace}}.Infrastructure.Persistence.Configurations;

public class {{EntityName}}Configuration : IEntityTypeConfiguration<{{EntityName}}>
{
    public void Configure(EntityTypeBuilder<{{EntityName}}> builder)
    {
        builder.ToTable("{{TableName}}");
        builder.HasKey(e => e.Id);
{{PropertyConfigLines}}
    }
}
`,
}

var entityTestUnit = Unit{
	Layer:       domain.LayerTest,
	Kind:        KindTest,
	PathPattern: "tests/Domain.Tests/Entities/{{EntityName}}Tests.cs",
	Slots: []Slot{
		{Name: "Namespace", Source: SourceNamespace, Rule: FillVerbatim},
		{Name: "EntityName", Source: SourceEntityName, Rule: FillPascal},
		{Name: "EntityNameCamel", Source: SourceEntityName, Rule: FillCamel},
	},
	Body: `using {{Namespace}}.Domain.Entities;
using Xunit;

namespace {{Namespace}}.Domain.Tests.Entities;

public class {{EntityName}}Tests
{
    [Fact]
    public void NewInstance_HasEmptyId()
    {
        var {{EntityNameCamel}} = new {{EntityName}}();

        Assert.Equal(Guid.Empty, {{EntityNameCamel}}.Id);
    }
}
`,
}

// sharedUnits returns the bundle-independent units in registration order.
func sharedUnits() []Unit {
	return []Unit{
		entityUnit,
		entityRelationshipsUnit,
		repositoryInterfaceUnit,
		repositoryUnit,
		configurationUnit,
		entityTestUnit,
	}
}

// ApplicableTo returns a registry containing only the units whose slot
// sources the schema can satisfy: units with relationship or property list
// slots are dropped when the schema has none. The generator engine itself
// never skips a unit, so callers use this to pre-filter.
func (r *Registry) ApplicableTo(schema *domain.EntitySchema) *Registry {
	var units []Unit
	for _, u := range r.units {
		if applicable(u, schema) {
			units = append(units, u)
		}
	}
	return NewRegistry(units...)
}

func applicable(u Unit, schema *domain.EntitySchema) bool {
	for _, s := range u.Slots {
		if s.Rule != FillList {
			continue
		}
		switch s.Source {
		case SourceProperties:
			if len(schema.Properties) == 0 {
				return false
			}
		case SourceRelationships:
			if len(schema.Relationships) == 0 {
				return false
			}
		}
	}
	return true
}
