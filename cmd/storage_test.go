package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bookshelf-server/internal/config"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/storage/file"
	"github.com/dtroode/bookshelf-server/internal/storage/memory"
	"github.com/dtroode/bookshelf-server/internal/storage/sqlite"
	"github.com/dtroode/bookshelf-server/internal/testutil"
)

func TestOpenDocumentStore(t *testing.T) {
	dir := t.TempDir()

	tests := map[string]struct {
		cfg      config.Config
		wantType any
	}{
		"memory": {
			cfg:      config.Config{Storage: config.Storage{Mode: config.StorageModeMemory}},
			wantType: &memory.Store{},
		},
		"file": {
			cfg:      config.Config{Storage: config.Storage{Mode: config.StorageModeFile, FilePath: filepath.Join(dir, "db.json")}},
			wantType: &file.Store{},
		},
		"sqlite": {
			cfg:      config.Config{Storage: config.Storage{Mode: config.StorageModeSQLite, FilePath: filepath.Join(dir, "catalog.db")}},
			wantType: &sqlite.Store{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store, closeStore, err := openDocumentStore(context.Background(), &tt.cfg, testutil.MakeNoopLogger())
			require.NoError(t, err)
			defer closeStore()

			assert.IsType(t, tt.wantType, store)

			doc, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, model.Document{Users: []model.User{}, Books: []model.Book{}}, doc)
		})
	}
}

func TestOpenDocumentStore_UnknownMode(t *testing.T) {
	cfg := config.Config{Storage: config.Storage{Mode: "tape"}}

	_, closeStore, err := openDocumentStore(context.Background(), &cfg, testutil.MakeNoopLogger())
	require.Error(t, err)
	closeStore()
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"version"})
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Build version: N/A")
}
