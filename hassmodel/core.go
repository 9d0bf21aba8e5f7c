package hassmodel

// Capability interfaces referenced by generated entity records through
// CoreInterfaceName. Service helpers for a domain are written against these.
type (
	LightEntityCore         interface{ EntityCore }
	SwitchEntityCore        interface{ EntityCore }
	SensorEntityCore        interface{ EntityCore }
	NumericSensorEntityCore interface{ EntityCore }
	BinarySensorEntityCore  interface{ EntityCore }
	ClimateEntityCore       interface{ EntityCore }
	CoverEntityCore         interface{ EntityCore }
	MediaPlayerEntityCore   interface{ EntityCore }
)
