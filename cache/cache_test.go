package cache

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

// Without redis the store must degrade to a no-op that always grants the lock.
func TestNilStore(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	var s *Store
	is.Equal(NewStore(nil), s)

	ok, err := s.AcquireMigrateLock(ctx)
	is.NoErr(err)
	is.True(ok)
	s.ReleaseMigrateLock(ctx)

	_, hit := s.GetStats(ctx)
	is.True(!hit)
	s.SetStats(ctx, []byte(`{}`))
}
