package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostHelpers(t *testing.T) {
	c := Cost{{Red, 3}, {White, 1}, {Red, 1}}

	assert.Equal(t, 5, c.Total())
	assert.Equal(t, 4, c.Of(Red))
	assert.Equal(t, 0, c.Of(Blue))
	assert.Equal(t, "{R3}{W1}{R1}", c.String())
	assert.Equal(t, "{U1}", Cost{{Blue, 1}}.String())
	assert.Equal(t, "{B1}", Cost{{Black, 1}}.String())
}

func TestResourceSymbolsAreDistinct(t *testing.T) {
	seen := map[string]ResourceType{}
	for _, r := range []ResourceType{Red, Blue, White, Black} {
		sym := r.Symbol()
		_, dup := seen[sym]
		assert.False(t, dup, "symbol %s reused by %s", sym, r)
		seen[sym] = r

		back, err := ParseResourceType(sym)
		require.NoError(t, err)
		assert.Equal(t, r, back)
	}
}

func TestParseResourceType(t *testing.T) {
	for in, want := range map[string]ResourceType{
		"red": Red, "R": Red, "blue": Blue, "u": Blue, "U": Blue,
		"w": White, " Black ": Black, "b": Black, "B": Black,
	} {
		for range 20 {
			got, err := ParseResourceType(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	}
	_, err := ParseResourceType("green")
	assert.Error(t, err)
}

func TestLightElementalAttackMirrorsHealth(t *testing.T) {
	l := &LightElemental{Hp: 10}
	require.True(t, l.SetHealth(4))

	atk, ok := l.Attack()
	require.True(t, ok)
	assert.Equal(t, 4, atk)
	assert.Equal(t, "Light elemental (4/4)", Debug(l))
}

func TestCloneIsIndependent(t *testing.T) {
	proto := &GenericMinion{CardName: "Grunt", Atk: 2, Hp: 3, Price: Cost{{Red, 1}}}
	clone := proto.Clone()
	clone.SetHealth(1)

	hp, _ := proto.Health()
	assert.Equal(t, 3, hp)
	hp, _ = clone.Health()
	assert.Equal(t, 1, hp)
}

func TestSpellsTargetInsteadOfSummon(t *testing.T) {
	assert.Equal(t, []PlayEffect{{Kind: Target, Target: TargetEverything}}, DamageSpell{}.PlayEffects())

	buff := BuffCard{}.PlayEffects()
	require.Len(t, buff, 1)
	assert.True(t, buff[0].Target.Has(TargetOwnMinion))
	assert.False(t, buff[0].Target.Has(TargetSelf))
	assert.Equal(t, "target(own-minion|opponent-minion)", buff[0].String())

	assert.False(t, BuffCard{}.SetHealth(3))
	_, ok := DamageSpell{}.Health()
	assert.False(t, ok)
}

func TestCatalogueLookupClones(t *testing.T) {
	cat := DefaultCatalogue()

	a, err := cat.Lookup("light ELEMENTAL")
	require.NoError(t, err)
	a.SetHealth(1)
	b, err := cat.Lookup("Light elemental")
	require.NoError(t, err)
	hp, _ := b.Health()
	assert.Equal(t, 10, hp)

	_, err = cat.Lookup("Dragon")
	assert.ErrorIs(t, err, ErrUnknownCard)
	assert.Equal(t, []string{"Light elemental", "Buff card", "Generic minion", "Damage spell card"}, cat.Names())
}
