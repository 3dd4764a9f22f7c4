//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"crisiscompass/internal/nav"
)

func TestVaultRoundTrip(t *testing.T) {
	v := MakeNavVault()

	assert.False(t, v.IsInVault("abc"))
	assert.Equal(t, nav.State{}, v.GetState("abc"))

	s := nav.State{Stage: nav.StageEvents, Topic: 3, Country: "India"}
	v.InsertState("abc", s)
	assert.True(t, v.IsInVault("abc"))
	assert.Equal(t, s, v.GetState("abc"))

	v.Delete("abc")
	assert.False(t, v.IsInVault("abc"))
}

func TestVaultConcurrentAccess(t *testing.T) {
	v := MakeNavVault()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("user-%d", i)
			v.InsertState(id, nav.State{Topic: i})
			_ = v.GetState(id)
			_ = v.IsInVault(id)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 32; i++ {
		assert.Equal(t, i, v.GetState(fmt.Sprintf("user-%d", i)).Topic)
	}
}
