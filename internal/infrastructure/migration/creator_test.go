package migration

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/autenticco/backend/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add leads table", "add_leads_table"},
		{"Add-Leads-Table", "add_leads_table"},
		{"add__leads__table", "add_leads_table"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "special_chars"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	t.Run("first migration starts at one", func(t *testing.T) {
		mf, err := CreateMigration(dir, "create cars", "Cars table")
		require.NoError(t, err)
		assert.Equal(t, uint(1), mf.Version)
		assert.Equal(t, filepath.Join(dir, "000001_create_cars.up.sql"), mf.UpPath)
		assert.Equal(t, filepath.Join(dir, "000001_create_cars.down.sql"), mf.DownPath)

		content, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- Migration: create_cars")
		assert.Contains(t, string(content), "-- Description: Cars table")
	})

	t.Run("next migration continues the sequence", func(t *testing.T) {
		mf, err := CreateMigration(dir, "Add Leads", "")
		require.NoError(t, err)
		assert.Equal(t, uint(2), mf.Version)

		list, err := ListMigrations(os.DirFS(dir))
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "000002_add_leads", list[1].String())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := CreateMigration(dir, "!!!", "")
		assert.Error(t, err)
	})
}

func TestListMigrations(t *testing.T) {
	t.Run("ignores unrelated files and orders by version", func(t *testing.T) {
		src := fstest.MapFS{
			"000010_later.up.sql":   {},
			"000002_early.up.sql":   {},
			"000002_early.down.sql": {},
			"README.md":             {},
			"embed.go":              {},
		}
		list, err := ListMigrations(src)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, uint(2), list[0].Version)
		assert.True(t, list[0].HasDown)
		assert.Equal(t, uint(10), list[1].Version)
		assert.False(t, list[1].HasDown)
	})

	t.Run("embedded migrations are paired", func(t *testing.T) {
		list, err := ListMigrations(migrations.FS)
		require.NoError(t, err)
		require.NotEmpty(t, list)
		for i, m := range list {
			assert.Equal(t, uint(i+1), m.Version, "versions must be contiguous")
			assert.True(t, m.HasDown, "%s has no down migration", m)
		}
	})
}
