package database

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	PokemonTableName   = "pokemon"
	MovesTableName     = "moves"
	AbilitiesTableName = "abilities"
	ItemsTableName     = "items"
)

var (
	PokemonColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "national_dex", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "japanese_name", Type: field.TypeString, Default: ""},
		{Name: "english_name", Type: field.TypeString, Default: ""},
		{Name: "type1", Type: field.TypeString},
		{Name: "type2", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeString, Default: ""},
		{Name: "height", Type: field.TypeFloat64, Default: 0},
		{Name: "weight", Type: field.TypeFloat64, Default: 0},
		{Name: "hp", Type: field.TypeInt, Default: 0},
		{Name: "attack", Type: field.TypeInt, Default: 0},
		{Name: "defense", Type: field.TypeInt, Default: 0},
		{Name: "sp_attack", Type: field.TypeInt, Default: 0},
		{Name: "sp_defense", Type: field.TypeInt, Default: 0},
		{Name: "speed", Type: field.TypeInt, Default: 0},
		{Name: "total_stats", Type: field.TypeInt, Default: 0},
		{Name: "catch_rate", Type: field.TypeInt, Default: 0},
		{Name: "experience_type", Type: field.TypeString, Default: ""},
		{Name: "gender_ratio", Type: field.TypeString, Default: ""},
		{Name: "egg_groups", Type: field.TypeJSON},
		{Name: "abilities", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	PokemonTable = &schema.Table{
		Name:       PokemonTableName,
		Columns:    PokemonColumns,
		PrimaryKey: []*schema.Column{PokemonColumns[0]},
		Indexes: []*schema.Index{
			{Name: "pokemon_name", Columns: []*schema.Column{PokemonColumns[2]}},
			{Name: "pokemon_type1_type2", Columns: []*schema.Column{PokemonColumns[5], PokemonColumns[6]}},
		},
	}

	MovesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "move_id", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "japanese_name", Type: field.TypeString, Default: ""},
		{Name: "english_name", Type: field.TypeString, Default: ""},
		{Name: "type", Type: field.TypeString},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "power", Type: field.TypeInt, Nullable: true},
		{Name: "accuracy", Type: field.TypeInt, Nullable: true},
		{Name: "pp", Type: field.TypeInt, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "generation", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	MovesTable = &schema.Table{
		Name:       MovesTableName,
		Columns:    MovesColumns,
		PrimaryKey: []*schema.Column{MovesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "move_name", Columns: []*schema.Column{MovesColumns[2]}},
			{Name: "move_type", Columns: []*schema.Column{MovesColumns[5]}},
		},
	}

	AbilitiesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ability_id", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "japanese_name", Type: field.TypeString, Default: ""},
		{Name: "english_name", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "common_count", Type: field.TypeInt, Default: 0},
		{Name: "hidden_count", Type: field.TypeInt, Default: 0},
		{Name: "generation", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	AbilitiesTable = &schema.Table{
		Name:       AbilitiesTableName,
		Columns:    AbilitiesColumns,
		PrimaryKey: []*schema.Column{AbilitiesColumns[0]},
		Indexes: []*schema.Index{
			{Name: "ability_name", Columns: []*schema.Column{AbilitiesColumns[2]}},
		},
	}

	ItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "japanese_name", Type: field.TypeString, Default: ""},
		{Name: "english_name", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString, Default: ""},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "generation", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	ItemsTable = &schema.Table{
		Name:       ItemsTableName,
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "item_category", Columns: []*schema.Column{ItemsColumns[4]}},
		},
	}

	Tables = []*schema.Table{
		PokemonTable,
		MovesTable,
		AbilitiesTable,
		ItemsTable,
	}
)

func columnNames(cols []*schema.Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}
