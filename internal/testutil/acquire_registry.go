package testutil

import (
	"context"
	"os"
	"path/filepath"

	"wardline/ward"
)

type (
	TestLog interface {
		Fatal(...interface{})
		Log(...interface{})
	}
)

// AcquireRegistry opens a fresh writable registry under a temp dir and
// returns it together with a cleanup func.
func AcquireRegistry(ctx context.Context, t TestLog, name string) (*ward.Registry, func()) {
	dir, err := os.MkdirTemp("", "wardline-tests")
	if err != nil {
		t.Fatal(err)
	}
	abspath := filepath.Join(dir, name+".db")
	reg, err := ward.OpenRegistry(ctx, abspath, true)
	if err != nil {
		t.Fatal(err)
	}
	return reg, func() {
		err := reg.Close()
		if err != nil {
			t.Log("unable to close registry", err)
		}
		err = os.RemoveAll(dir)
		if err != nil {
			t.Log("unable to cleanup temp dir", dir)
		}
	}
}
