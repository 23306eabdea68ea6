package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngboy11/school/internal/roster/store"
	"github.com/ngboy11/school/internal/roster/store/drivers/sqlite"
	"github.com/ngboy11/school/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	cryptox.SetPepperPath(filepath.Join(os.TempDir(), "school-service-test-pepper"))
	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}
