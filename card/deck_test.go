package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckParser(t *testing.T) {
	parser := NewDeckParser(nil)

	entries, err := parser.Parse("test.deck", `
		# comment line
		2x "Light elemental"
		3 "buff card"
		1x minion "Ogre" 6/7 {red 3} {b 1}
	`)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, "Light elemental", entries[0].Card.Name())
	assert.Equal(t, 3, entries[1].Count)
	assert.Equal(t, "Buff card", entries[1].Card.Name())

	ogre, ok := entries[2].Card.(*GenericMinion)
	require.True(t, ok)
	assert.Equal(t, &GenericMinion{CardName: "Ogre", Atk: 6, Hp: 7, Price: Cost{{Red, 3}, {Blue, 1}}}, ogre)

	cards := Expand(entries)
	assert.Len(t, cards, 6)
	cards[0].SetHealth(1)
	hp, _ := cards[1].Health()
	assert.Equal(t, 10, hp, "expanded copies must not share state")
}

func TestStarterDeck(t *testing.T) {
	entries, err := NewDeckParser(nil).Parse("starter", StarterDeck)
	require.NoError(t, err)
	assert.Len(t, Expand(entries), 60)
}

func TestDeckParserErrors(t *testing.T) {
	parser := NewDeckParser(nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"unknown card", `2x "Dragon"`, `bad.deck:1:1: unknown card: "Dragon"`},
		{"zero count", "1x \"Buff card\"\n0x \"Buff card\"", "bad.deck:2:1: card count must be positive"},
		{"huge count", `1000000000x "Buff card"`, "bad.deck:1:1: deck exceeds 120 cards"},
		{"total too big", "60x \"Buff card\"\n60x \"Buff card\"\n1 \"Buff card\"", "bad.deck:3:1: deck exceeds 120 cards"},
		{"bad resource", `1x minion "Ogre" 1/1 {green 2}`, `bad.deck:1:22: unknown resource type "green"`},
		{"syntax", `2x minion "Ogre" 1`, "parse deck"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse("bad.deck", tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := parser.Parse("bad.deck", `2x "Dragon"`)
	assert.ErrorIs(t, err, ErrUnknownCard)

	entries, err := parser.Parse("full.deck", `120x "Buff card"`)
	require.NoError(t, err)
	assert.Len(t, Expand(entries), MaxDeckSize)
}
