package message

// MavType enumerates the MAV_TYPE field of HEARTBEAT, decoded at access
// time from a single payload byte. Only the subset the original source
// carried over is defined here; an unknown wire value is still kept as the
// MavType's numeric value (uint8(t)) even though String reports it as
// MAV_TYPE_UNKNOWN.
type MavType uint8

// MavType values, per the MAVLink common dialect.
const (
	MavTypeGeneric MavType = iota
	MavTypeFixedWing
	MavTypeQuadrotor
	MavTypeCoaxial
	MavTypeHelicopter
	MavTypeAntennaTracker
	MavTypeGCS
	MavTypeAirship
	MavTypeFreeBalloon
	MavTypeRocket
	MavTypeGroundRover
	MavTypeSurfaceBoat
	MavTypeSubmarine
)

var mavTypeNames = map[MavType]string{
	MavTypeGeneric:        "MAV_TYPE_GENERIC",
	MavTypeFixedWing:      "MAV_TYPE_FIXED_WING",
	MavTypeQuadrotor:      "MAV_TYPE_QUADROTOR",
	MavTypeCoaxial:        "MAV_TYPE_COAXIAL",
	MavTypeHelicopter:     "MAV_TYPE_HELICOPTER",
	MavTypeAntennaTracker: "MAV_TYPE_ANTENNA_TRACKER",
	MavTypeGCS:            "MAV_TYPE_GCS",
	MavTypeAirship:        "MAV_TYPE_AIRSHIP",
	MavTypeFreeBalloon:    "MAV_TYPE_FREE_BALLOON",
	MavTypeRocket:         "MAV_TYPE_ROCKET",
	MavTypeGroundRover:    "MAV_TYPE_GROUND_ROVER",
	MavTypeSurfaceBoat:    "MAV_TYPE_SURFACE_BOAT",
	MavTypeSubmarine:      "MAV_TYPE_SUBMARINE",
}

// String renders the enum name, or "MAV_TYPE_UNKNOWN" for unrecognized
// wire values — named-bit/variant completeness beyond the pack's two
// sample messages is out of scope (§1).
func (t MavType) String() string {
	if name, ok := mavTypeNames[t]; ok {
		return name
	}
	return "MAV_TYPE_UNKNOWN"
}

// MavAutopilot enumerates the MAV_AUTOPILOT field of HEARTBEAT.
type MavAutopilot uint8

// MavAutopilot values, per the MAVLink common dialect.
const (
	MavAutopilotGeneric MavAutopilot = iota
	MavAutopilotReserved
	MavAutopilotSlugs
	MavAutopilotArdupilotmega
	MavAutopilotOpenpilot
)

var mavAutopilotNames = map[MavAutopilot]string{
	MavAutopilotGeneric:       "MAV_AUTOPILOT_GENERIC",
	MavAutopilotReserved:      "MAV_AUTOPILOT_RESERVED",
	MavAutopilotSlugs:         "MAV_AUTOPILOT_SLUGS",
	MavAutopilotArdupilotmega: "MAV_AUTOPILOT_ARDUPILOTMEGA",
	MavAutopilotOpenpilot:     "MAV_AUTOPILOT_OPENPILOT",
}

// String renders the enum name, or "MAV_AUTOPILOT_UNKNOWN".
func (a MavAutopilot) String() string {
	if name, ok := mavAutopilotNames[a]; ok {
		return name
	}
	return "MAV_AUTOPILOT_UNKNOWN"
}

// MavState enumerates the MAV_STATE field of HEARTBEAT.
type MavState uint8

// MavState values, per the MAVLink common dialect.
const (
	MavStateUninit MavState = iota
	MavStateBoot
	MavStateCalibrating
	MavStateStandby
	MavStateActive
	MavStateCritical
	MavStateEmergency
	MavStatePoweroff
	MavStateFlightTermination
)

var mavStateNames = map[MavState]string{
	MavStateUninit:            "MAV_STATE_UNINIT",
	MavStateBoot:              "MAV_STATE_BOOT",
	MavStateCalibrating:       "MAV_STATE_CALIBRATING",
	MavStateStandby:           "MAV_STATE_STANDBY",
	MavStateActive:            "MAV_STATE_ACTIVE",
	MavStateCritical:          "MAV_STATE_CRITICAL",
	MavStateEmergency:         "MAV_STATE_EMERGENCY",
	MavStatePoweroff:          "MAV_STATE_POWEROFF",
	MavStateFlightTermination: "MAV_STATE_FLIGHT_TERMINATION",
}

// String renders the enum name, or "MAV_STATE_UNKNOWN".
func (s MavState) String() string {
	if name, ok := mavStateNames[s]; ok {
		return name
	}
	return "MAV_STATE_UNKNOWN"
}
