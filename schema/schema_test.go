package schema

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type User struct {
	ID        uint64 `db:"id"`
	FirstName string `db:"first_name"`
	Email     string
	Secret    string `db:"-"`
	internal  int
}

type OrderItem struct {
	ID       uint64
	Quantity int `db:"qty,omitempty"`
}

type LegacyAccount struct {
	ID uint64
}

func (LegacyAccount) TableName() string { return "accounts_v1" }

func TestIntrospect(t *testing.T) {
	tests := []struct {
		name           string
		inputType      reflect.Type
		expectError    bool
		expectedTable  string
		expectedCols   []string
	}{
		{
			name:          "TaggedStruct",
			inputType:     reflect.TypeOf(User{}),
			expectedTable: "users",
			expectedCols:  []string{"id", "first_name", "email"},
		},
		{
			name:          "StructPointer",
			inputType:     reflect.TypeOf(&User{}),
			expectedTable: "users",
			expectedCols:  []string{"id", "first_name", "email"},
		},
		{
			name:          "CompoundName",
			inputType:     reflect.TypeOf(OrderItem{}),
			expectedTable: "order_items",
			expectedCols:  []string{"id", "qty"},
		},
		{
			name:        "NotAStruct",
			inputType:   reflect.TypeOf("hello"),
			expectError: true,
		},
		{
			name:        "Int",
			inputType:   reflect.TypeOf(42),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, err := Introspect(tt.inputType)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, meta)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, meta)
			assert.Equal(t, tt.expectedTable, meta.TableName)
			assert.Equal(t, tt.expectedCols, meta.Columns())
		})
	}
}

func TestIntrospectValueHonorsTableNamer(t *testing.T) {
	meta, err := IntrospectValue(LegacyAccount{})
	require.NoError(t, err)
	assert.Equal(t, "accounts_v1", meta.TableName)
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"User", "user"},
		{"OrderItem", "order_item"},
		{"UserID", "user_id"},
		{"HTTPServer", "http_server"},
		{"simple", "simple"},
		{"APIKey", "api_key"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.in))
		})
	}
}

func TestUUIDGenerator(t *testing.T) {
	id, err := GenerateID("uuid")
	require.NoError(t, err)

	parsed, err := uuid.Parse(id.(string))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestULIDGeneratorMonotonic(t *testing.T) {
	a, err := GenerateID("ulid")
	require.NoError(t, err)
	b, err := GenerateID("ulid")
	require.NoError(t, err)

	ua, err := ulid.ParseStrict(a.(string))
	require.NoError(t, err)
	ub, err := ulid.ParseStrict(b.(string))
	require.NoError(t, err)
	assert.Equal(t, -1, ua.Compare(ub))
}

func TestUnknownGenerator(t *testing.T) {
	_, err := GenerateID("snowflake")
	assert.ErrorContains(t, err, "unknown generator type")
}

func TestRegisterGenerator(t *testing.T) {
	reg := NewGeneratorRegistry()
	reg.Register("fixed", fixedGenerator{})
	id, err := reg.Generate("fixed")
	require.NoError(t, err)
	assert.Equal(t, "const-id", id)
}

type fixedGenerator struct{}

func (fixedGenerator) Generate() (any, error) { return "const-id", nil }
func (fixedGenerator) Type() string           { return "fixed" }
