//    CrisisCompass
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"sync"

	"crisiscompass/internal/nav"
)

// NavVault - browser navigation states; map of uuids to states
type NavVault struct {
	StateMap map[string]nav.State
	mutex    sync.RWMutex
}

func MakeNavVault() *NavVault {
	return &NavVault{
		StateMap: make(map[string]nav.State),
		mutex:    sync.RWMutex{},
	}
}

func (nv *NavVault) InsertState(id string, s nav.State) {
	nv.mutex.Lock()
	defer nv.mutex.Unlock()
	nv.StateMap[id] = s
}

func (nv *NavVault) Delete(id string) {
	nv.mutex.Lock()
	defer nv.mutex.Unlock()
	delete(nv.StateMap, id)
}

func (nv *NavVault) IsInVault(id string) bool {
	nv.mutex.RLock()
	defer nv.mutex.RUnlock()
	_, ok := nv.StateMap[id]
	return ok
}

// GetState - an unknown id gets the zero state, i.e. the topic screen
func (nv *NavVault) GetState(id string) nav.State {
	nv.mutex.RLock()
	defer nv.mutex.RUnlock()
	return nv.StateMap[id]
}
