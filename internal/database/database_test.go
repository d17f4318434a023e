package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dex.db")
	c, err := New(context.Background(), &models.DatabaseConfig{
		DBType:           "sqlite",
		ConnectionString: "file:" + path + "?_pragma=foreign_keys(1)",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Migrate(context.Background()))
	return c
}

func ptr[T any](v T) *T { return &v }

func bulbasaur() *models.Pokemon {
	return &models.Pokemon{
		NationalDex:    1,
		Name:           "妙蛙种子",
		JapaneseName:   "フシギダネ",
		EnglishName:    "Bulbasaur",
		Type1:          "草",
		Type2:          ptr("毒"),
		Classification: "种子宝可梦",
		Height:         0.7,
		Weight:         6.9,
		HP:             45,
		Attack:         49,
		Defense:        49,
		SpAttack:       65,
		SpDefense:      65,
		Speed:          45,
		TotalStats:     1,
		CatchRate:      45,
		ExperienceType: "中慢",
		GenderRatio:    "雄性87.5% 雌性12.5%",
		EggGroups:      []string{"怪兽", "植物"},
		Abilities:      []string{"overgrow", "chlorophyll"},
	}
}

func TestNewUnsupportedType(t *testing.T) {
	_, err := New(context.Background(), &models.DatabaseConfig{DBType: "oracle"})
	require.Error(t, err)
}

func TestMigrateIsRepeatable(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.Migrate(context.Background()))
}

func TestPokemonRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	p := bulbasaur()
	require.NoError(t, c.Insert(ctx, p))
	require.NotZero(t, p.ID)
	require.Equal(t, 318, p.TotalStats)

	got, err := c.GetPokemonByDex(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, p.ID, got.ID)
	require.Equal(t, "妙蛙种子", got.Name)
	require.Equal(t, "毒", *got.Type2)
	require.InDelta(t, 6.9, got.Weight, 0.0001)
	require.Equal(t, []string{"怪兽", "植物"}, got.EggGroups)
	require.Equal(t, []string{"overgrow", "chlorophyll"}, got.Abilities)
	require.Equal(t, 318, got.TotalStats)
	require.False(t, got.CreatedAt.IsZero())

	byName, err := c.GetPokemonByName(ctx, "bulbasaur")
	require.NoError(t, err)
	require.Equal(t, p.ID, byName.ID)

	byID, err := c.GetPokemon(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, byID.NationalDex)

	_, err = c.GetPokemonByDex(ctx, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestExistsAndConflict(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	exists, err := c.Exists(ctx, models.KindPokemon, 1)
	require.NoError(t, err)
	require.False(t, exists)

	require.NoError(t, c.Insert(ctx, bulbasaur()))

	exists, err = c.Exists(ctx, models.KindPokemon, 1)
	require.NoError(t, err)
	require.True(t, exists)

	err = c.Insert(ctx, bulbasaur())
	require.ErrorIs(t, err, ErrConflict)

	n, err := c.Count(ctx, models.KindPokemon)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = c.Exists(ctx, models.Kind("berry"), 1)
	require.Error(t, err)
}

func TestListPokemonFilterAndPaging(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	for i, name := range []string{"妙蛙种子", "妙蛙草", "妙蛙花", "小火龙"} {
		p := bulbasaur()
		p.NationalDex = i + 1
		p.Name = name
		p.EnglishName = name
		if name == "小火龙" {
			p.Type1 = "火"
			p.Type2 = nil
		}
		require.NoError(t, c.InsertPokemon(ctx, p))
	}

	list, total, err := c.ListPokemon(ctx, PokemonFilter{}, Page{Number: 1, Size: 3})
	require.NoError(t, err)
	require.Equal(t, 4, total)
	require.Len(t, list, 3)
	require.Equal(t, 1, list[0].NationalDex)

	list, _, err = c.ListPokemon(ctx, PokemonFilter{}, Page{Number: 2, Size: 3})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, 4, list[0].NationalDex)

	list, total, err = c.ListPokemon(ctx, PokemonFilter{Type: "毒"}, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, list, 3)

	list, total, err = c.ListPokemon(ctx, PokemonFilter{Type: "火"}, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Nil(t, list[0].Type2)

	_, total, err = c.ListPokemon(ctx, PokemonFilter{Search: "妙蛙"}, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 3, total)

	_, total, err = c.ListPokemon(ctx, PokemonFilter{Search: "妙蛙", Type: "火"}, Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestUpdateKeepsNaturalKeyAndRecomputesTotal(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	p := bulbasaur()
	require.NoError(t, c.InsertPokemon(ctx, p))

	p.NationalDex = 999
	p.HP = 100
	p.TotalStats = 0
	require.NoError(t, c.UpdatePokemon(ctx, p))

	got, err := c.GetPokemon(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.NationalDex)
	require.Equal(t, 100, got.HP)
	require.Equal(t, 373, got.TotalStats)

	missing := bulbasaur()
	missing.ID = 12345
	require.ErrorIs(t, c.UpdatePokemon(ctx, missing), ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	p := bulbasaur()
	require.NoError(t, c.InsertPokemon(ctx, p))
	require.NoError(t, c.DeletePokemon(ctx, p.ID))
	require.ErrorIs(t, c.DeletePokemon(ctx, p.ID), ErrNotFound)

	it := &models.Item{Name: "大师球", EnglishName: "Master Ball", Category: "精灵球"}
	require.NoError(t, c.InsertItem(ctx, it))
	require.NoError(t, c.DeleteItem(ctx, "大师球"))
	require.ErrorIs(t, c.DeleteItem(ctx, "大师球"), ErrNotFound)
}

func TestMoves(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	pound := &models.Move{MoveID: 1, Name: "拍击", EnglishName: "Pound", Type: "一般", Category: "物理", Power: ptr(40), Accuracy: ptr(100), PP: ptr(35), Generation: "第一世代"}
	teleport := &models.Move{MoveID: 100, Name: "瞬间移动", EnglishName: "Teleport", Type: "超能力", Category: "变化", PP: ptr(20), Generation: "第一世代"}
	require.NoError(t, c.Insert(ctx, pound))
	require.NoError(t, c.Insert(ctx, teleport))

	got, err := c.GetMoveByMoveID(ctx, 100)
	require.NoError(t, err)
	require.Nil(t, got.Power)
	require.Nil(t, got.Accuracy)
	require.Equal(t, 20, *got.PP)

	got, err = c.GetMoveByName(ctx, "pound")
	require.NoError(t, err)
	require.Equal(t, 40, *got.Power)

	list, total, err := c.ListMoves(ctx, MoveFilter{Category: "变化"}, Page{Number: 1, Size: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "瞬间移动", list[0].Name)

	got.Power = nil
	require.NoError(t, c.UpdateMove(ctx, got))
	got, err = c.GetMove(ctx, got.ID)
	require.NoError(t, err)
	require.Nil(t, got.Power)
}

func TestAbilitiesAndItems(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.Insert(ctx, &models.Ability{AbilityID: 65, Name: "茂盛", EnglishName: "Overgrow", CommonCount: 2, HiddenCount: 1, Generation: "第三世代"}))
	require.NoError(t, c.Insert(ctx, &models.Ability{AbilityID: 1, Name: "恶臭", EnglishName: "Stench", Generation: "第三世代"}))

	list, total, err := c.ListAbilities(ctx, AbilityFilter{Generation: "第三世代"}, Page{Number: 1, Size: 20})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Equal(t, 1, list[0].AbilityID)

	a, err := c.GetAbilityByAbilityID(ctx, 65)
	require.NoError(t, err)
	require.Equal(t, 1, a.HiddenCount)

	require.NoError(t, c.Insert(ctx, &models.Item{Name: "大师球", EnglishName: "Master Ball", Category: "精灵球", Generation: "第三世代"}))
	require.ErrorIs(t, c.Insert(ctx, &models.Item{Name: "大师球"}), ErrConflict)

	it, err := c.GetItem(ctx, "master ball")
	require.NoError(t, err)
	require.Equal(t, "大师球", it.Name)

	items, total, err := c.ListItems(ctx, ItemFilter{Category: "精灵球", Generation: "第三世代"}, Page{Number: 1, Size: 20})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, items, 1)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	boom := errors.New("boom")
	err := c.WithTx(ctx, func(tx *Client) error {
		require.NoError(t, tx.InsertPokemon(ctx, bulbasaur()))
		return boom
	})
	require.ErrorIs(t, err, boom)

	n, err := c.Count(ctx, models.KindPokemon)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, c.WithTx(ctx, func(tx *Client) error {
		return tx.InsertPokemon(ctx, bulbasaur())
	}))

	n, err = c.Count(ctx, models.KindPokemon)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestContext(t *testing.T) {
	c := newTestClient(t)
	ctx := NewContext(context.Background(), c)
	require.Same(t, c, FromContext(ctx))
	require.Nil(t, FromContext(context.Background()))
}
