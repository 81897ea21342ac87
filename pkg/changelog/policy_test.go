package changelog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-hayashi/relcycle/pkg/changelog"
)

func writePolicyFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestDefaultPolicy(t *testing.T) {
	policy := changelog.DefaultPolicy()
	gt.Value(t, policy.FixKeywords).Equal([]string{"fix", "bug", "resolves"})
	gt.Value(t, policy.AnchorWeekday).Equal(time.Wednesday)
}

func TestLoadPolicy(t *testing.T) {
	path := writePolicyFile(t, `
fix_keywords = ["fix", "hotfix"]
anchor_weekday = "friday"
`)

	policy, err := changelog.LoadPolicy(path)
	gt.NoError(t, err)
	gt.Value(t, policy.FixKeywords).Equal([]string{"fix", "hotfix"})
	gt.Value(t, policy.AnchorWeekday).Equal(time.Friday)
}

func TestLoadPolicy_PartialFileKeepsDefaults(t *testing.T) {
	path := writePolicyFile(t, `anchor_weekday = "Monday"`)

	policy, err := changelog.LoadPolicy(path)
	gt.NoError(t, err)
	gt.Value(t, policy.FixKeywords).Equal([]string{"fix", "bug", "resolves"})
	gt.Value(t, policy.AnchorWeekday).Equal(time.Monday)
}

func TestLoadPolicy_UnknownWeekday(t *testing.T) {
	path := writePolicyFile(t, `anchor_weekday = "someday"`)

	_, err := changelog.LoadPolicy(path)
	gt.Error(t, err)
}

func TestLoadPolicy_MissingFile(t *testing.T) {
	_, err := changelog.LoadPolicy(filepath.Join(t.TempDir(), "absent.toml"))
	gt.Error(t, err)
}
