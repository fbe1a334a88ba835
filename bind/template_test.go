package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateNames(t *testing.T) {
	tests := []struct {
		name     string
		template Template
		expected []string
	}{
		{
			name:     "NoPlaceholders",
			template: "SELECT * FROM users",
			expected: nil,
		},
		{
			name:     "SinglePlaceholder",
			template: "SELECT * FROM users WHERE id = :id",
			expected: []string{"id"},
		},
		{
			name:     "MultiplePlaceholders",
			template: "SELECT * FROM users WHERE age > :min_age AND age < :max_age",
			expected: []string{"min_age", "max_age"},
		},
		{
			name:     "RepeatedPlaceholder",
			template: "SELECT * FROM users WHERE first_name = :name OR last_name = :name",
			expected: []string{"name"},
		},
		{
			name:     "InsideSingleQuotedLiteral",
			template: "SELECT ':not_a_param' FROM users WHERE id = :id",
			expected: []string{"id"},
		},
		{
			name:     "InsideDoubleQuotedIdentifier",
			template: `SELECT ":ghost" FROM users WHERE id = :id`,
			expected: []string{"id"},
		},
		{
			name:     "EscapedQuoteInLiteral",
			template: "SELECT * FROM users WHERE note = 'it''s :fine' AND id = :id",
			expected: []string{"id"},
		},
		{
			name:     "LineComment",
			template: "SELECT * FROM users -- :ignored\nWHERE id = :id",
			expected: []string{"id"},
		},
		{
			name:     "BlockComment",
			template: "SELECT * FROM users /* :ignored */ WHERE id = :id",
			expected: []string{"id"},
		},
		{
			name:     "PostgresCastIsNotPlaceholder",
			template: "SELECT id::text FROM users WHERE id = :id",
			expected: []string{"id"},
		},
		{
			name:     "ColonFollowedByDigit",
			template: "SELECT * FROM users WHERE id = :1",
			expected: nil,
		},
		{
			name:     "UnderscoreStart",
			template: "SELECT * FROM t WHERE a = :_hidden",
			expected: []string{"_hidden"},
		},
		{
			name:     "PlaceholderAtEnd",
			template: "SELECT * FROM users WHERE id = :id",
			expected: []string{"id"},
		},
		{
			name:     "LikeConcatenation",
			template: "SELECT * FROM Users WHERE FirstName LIKE '%' + :name + '%'",
			expected: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.template.Names())
		})
	}
}

func TestTemplateFingerprint(t *testing.T) {
	a := Template("SELECT * FROM users WHERE id = :id")
	b := Template("SELECT * FROM users WHERE id = :id")
	c := Template("SELECT * FROM users WHERE id = :other")

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestMix64(t *testing.T) {
	assert.Equal(t, Mix64(1, 2), Mix64(1, 2))
	assert.NotEqual(t, Mix64(1, 2), Mix64(2, 1))
}
