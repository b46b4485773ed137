package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSourcePath(t *testing.T) {
	tests := []struct {
		name       string
		sourcePath string
		want       string
	}{
		{
			name:       "Strips everything before the tests component",
			sourcePath: "/home/u1/repo/tests/ACL/t.robot",
			want:       "tests/acl/t.robot",
		},
		{
			name:       "Strips everything before the scripts component",
			sourcePath: "/opt/ci/workspace/scripts/smoke/login.robot",
			want:       "scripts/smoke/login.robot",
		},
		{
			name:       "Uses the left-most marker when both are present",
			sourcePath: "/a/scripts/b/tests/c.robot",
			want:       "scripts/b/tests/c.robot",
		},
		{
			name:       "Normalizes Windows separators and case",
			sourcePath: `C:\Repo\Tests\Suite.robot`,
			want:       "tests/suite.robot",
		},
		{
			name:       "Ignores components that merely contain a marker",
			sourcePath: "/a/b/tests_team1/scripts_team2/x.robot",
			want:       "/a/b/tests_team1/scripts_team2/x.robot",
		},
		{
			name:       "Empty path stays empty",
			sourcePath: "",
			want:       "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, NormalizeSourcePath(test.sourcePath))
		})
	}
}

func TestNormalizeSourcePath_IsIdempotent(t *testing.T) {
	paths := []string{
		"/home/u1/repo/tests/ACL/t.robot",
		`C:\Repo\Tests\Suite.robot`,
		"/no/marker/here.robot",
	}

	for _, path := range paths {
		once := NormalizeSourcePath(path)
		require.Equal(t, once, NormalizeSourcePath(once))
	}
}

func TestChecksum_SameTestOnDifferentMachinesMatches(t *testing.T) {
	// Given
	name := "Login succeeds"
	doc := "Verify that a valid user can log in."

	// When
	onLinux := Checksum(name, doc, "/home/u1/repo/tests/auth/login.robot")
	onOtherHome := Checksum(name, doc, "/home/u2/elsewhere/tests/auth/login.robot")
	onWindows := Checksum(name, doc, `D:\Checkout\Tests\Auth\Login.robot`)

	// Then
	assert.Equal(t, "550cbcac5f2b3157590699da8a61553f", onLinux)
	assert.Equal(t, onLinux, onOtherHome)
	assert.Equal(t, onLinux, onWindows)
}

func TestChecksum_ChangesWithEveryInput(t *testing.T) {
	base := Checksum("Name", "Doc", "tests/t.robot")

	assert.NotEqual(t, base, Checksum("Other", "Doc", "tests/t.robot"))
	assert.NotEqual(t, base, Checksum("Name", "Other", "tests/t.robot"))
	assert.NotEqual(t, base, Checksum("Name", "Doc", "tests/other.robot"))
}

func TestChecksum_EmptyInputsAreValid(t *testing.T) {
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Checksum("", "", ""))
}
