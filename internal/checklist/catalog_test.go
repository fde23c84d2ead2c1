package checklist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()
	require.NotNil(t, c)

	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 15, c.ItemCount())
	assert.Equal(t, 60, c.MaxScore())

	names := make([]string, 0, c.Len())
	for _, d := range c.Domains() {
		names = append(names, d.Name)
		assert.Equal(t, 3, d.Len(), "domain %q", d.Name)
		assert.Equal(t, 12, d.MaxScore(), "domain %q", d.Name)
	}
	assert.Equal(t, []string{
		"Receptive Language",
		"Expressive Language",
		"Motor Skills",
		"Social Interaction",
		"Daily Living Skills",
	}, names)
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	d, ok := c.Domain("Motor Skills")
	require.True(t, ok)
	assert.Equal(t, "Jumps with both feet", d.Items[2])

	_, ok = c.Domain("Cooking")
	assert.False(t, ok)

	assert.True(t, c.HasItem("Motor Skills", 0))
	assert.True(t, c.HasItem("Motor Skills", 2))
	assert.False(t, c.HasItem("Motor Skills", 3))
	assert.False(t, c.HasItem("Motor Skills", -1))
	assert.False(t, c.HasItem("Cooking", 0))
}

func TestCatalog_Immutable(t *testing.T) {
	c := Default()

	domains := c.Domains()
	domains[0].Name = "changed"
	domains[0].Items[0] = "changed"

	d, ok := c.Domain("Receptive Language")
	require.True(t, ok)
	assert.Equal(t, "Follows 1-step instructions", d.Items[0])

	d.Items[1] = "changed"
	again, _ := c.Domain("Receptive Language")
	assert.Equal(t, "Identifies common objects", again.Items[1])
}

func TestNew_CopiesInput(t *testing.T) {
	in := []Domain{{Name: "Play", Items: []string{"Stacks blocks"}}}
	c, err := New(in)
	require.NoError(t, err)

	in[0].Items[0] = "changed"
	d, _ := c.Domain("Play")
	assert.Equal(t, "Stacks blocks", d.Items[0])
}

func TestNew_RejectsEmptyDomain(t *testing.T) {
	_, err := New([]Domain{{Name: "Play"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDomain))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantErr   error
		wantItems int
	}{
		{
			name:      "valid",
			body:      `{"version":"v1.0.0","domains":[{"name":"Play","items":["Stacks blocks","Pretend play"]}]}`,
			wantItems: 2,
		},
		{
			name:      "valid minor bump",
			body:      `{"version":"v1.3.2","domains":[{"name":"Play","items":["Stacks blocks"]}]}`,
			wantItems: 1,
		},
		{
			name:    "malformed json",
			body:    `{not json}`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "missing version",
			body:    `{"domains":[{"name":"Play","items":["a"]}]}`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "unknown field",
			body:    `{"version":"v1.0.0","domains":[{"name":"Play","items":["a"],"weight":2}]}`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "not semver",
			body:    `{"version":"1.0","domains":[{"name":"Play","items":["a"]}]}`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "unsupported major",
			body:    `{"version":"v2.0.0","domains":[{"name":"Play","items":["a"]}]}`,
			wantErr: ErrInvalidCatalog,
		},
		{
			name:    "empty domain",
			body:    `{"version":"v1.0.0","domains":[{"name":"Play","items":[]}]}`,
			wantErr: ErrInvalidDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.body))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantItems, c.ItemCount())
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "checklist.json")
	body := `{"version":"v1.0.0","domains":[` +
		`{"name":"Play","items":["Stacks blocks"]},` +
		`{"name":"Self Care","items":["Washes hands","Uses toilet"]}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 3, c.ItemCount())
	assert.Equal(t, "Self Care", c.Domains()[1].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
