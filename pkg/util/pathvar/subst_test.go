/*
Copyright IBM Corp. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pathvar

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const envKey = "FABGATEWAY_TESTVAR"

func TestSubstEnvVar(t *testing.T) {
	t.Setenv(envKey, "I AM SET")

	assert.Equal(t, "$foo"+"I AM SET"+"foo", Subst("$foo${"+envKey+"}foo"))
	assert.Equal(t, "I AM SET", Subst("${"+envKey+"}"))
	assert.Equal(t, "I AM SETI AM SET/x", Subst("${"+envKey+"}${"+envKey+"}/x"))
}

func TestSubstNotAKey(t *testing.T) {
	o := "${FABGATEWAY_UNSET_TESTVAR}"
	assert.Equal(t, o, Subst(o))
}

func TestSubstAlmostVar(t *testing.T) {
	t.Setenv(envKey, "I AM SET")

	o := "${" + envKey + "{}${}$"
	assert.Equal(t, o, Subst(o))
}

func TestSubstNoVar(t *testing.T) {
	assert.Equal(t, "foo", Subst("foo"))
	assert.Equal(t, "", Subst(""))
	assert.Equal(t, "$foo$HOMEfoo", Subst("$foo$HOMEfoo"), "only the braced form is expanded")
}

func TestSubstHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "wallet"), Subst("${HOME}/wallet"))
	assert.Equal(t, filepath.Join(home, "wallet"), Subst("~/wallet"))
	assert.Equal(t, home, Subst("~"))
	assert.Equal(t, "~user/wallet", Subst("~user/wallet"))
}

func TestSubstWalletHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".fabric-gateway", "wallet", "org1"), Subst("${WALLET_HOME}/org1"))

	t.Setenv("WALLET_HOME", "/var/lib/wallet")
	assert.Equal(t, "/var/lib/wallet/org1", Subst("${WALLET_HOME}/org1"))
}
