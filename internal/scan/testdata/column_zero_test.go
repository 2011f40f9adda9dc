package basecase

import (
	"os"
	"testing"
)

var _ = os.Setenv("SKIP_setup", "true")

func TestColumnZero(t *testing.T) {
	t.Log(`os.Setenv("SKIP_deploy", "true") is only mentioned in a string here`)
	_ = 1; os.Setenv("SKIP_validate", "true")
}
