package components

import "github.com/yohamta/donburi"

// SaveSlotsData stores the values edited in the save data demo
type SaveSlotsData struct {
	Values        []int32
	SelectedIndex int
	Dirty         bool   // Values changed since the last save
	Status        string // Last load/save message
}

var SaveSlots = donburi.NewComponentType[SaveSlotsData]()
