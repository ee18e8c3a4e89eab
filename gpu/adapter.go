package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// SelectAdapter picks the adapter to open from those compatible with the
// surface. Returns nil when the list is empty.
func SelectAdapter(adapters []hal.ExposedAdapter, pref gputypes.PowerPreference) *hal.ExposedAdapter {
	types := make([]gputypes.DeviceType, len(adapters))
	for i := range adapters {
		types[i] = adapters[i].Info.DeviceType
	}
	idx := rankAdapters(types, pref)
	if idx < 0 {
		return nil
	}
	return &adapters[idx]
}

// rankAdapters returns the index of the preferred device type.
//
// High performance prefers discrete over integrated GPUs, low power the
// reverse. Without a preference the first hardware GPU wins. Software and
// unknown adapters are used only when nothing else is available.
func rankAdapters(types []gputypes.DeviceType, pref gputypes.PowerPreference) int {
	if len(types) == 0 {
		return -1
	}

	var order []gputypes.DeviceType
	switch pref {
	case gputypes.PowerPreferenceHighPerformance:
		order = []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU}
	case gputypes.PowerPreferenceLowPower:
		order = []gputypes.DeviceType{gputypes.DeviceTypeIntegratedGPU, gputypes.DeviceTypeDiscreteGPU}
	default:
		for i, t := range types {
			if t == gputypes.DeviceTypeDiscreteGPU || t == gputypes.DeviceTypeIntegratedGPU {
				return i
			}
		}
		return fallbackAdapter(types)
	}

	for _, want := range order {
		for i, t := range types {
			if t == want {
				return i
			}
		}
	}
	return fallbackAdapter(types)
}

// fallbackAdapter returns the first adapter that is not a software
// rasterizer, or 0 when all of them are.
func fallbackAdapter(types []gputypes.DeviceType) int {
	for i, t := range types {
		if t != gputypes.DeviceTypeCPU {
			return i
		}
	}
	return 0
}
