package message

import "encoding/json"

type rcChannelsJSON struct {
	TimeBootMs uint32                 `json:"time_boot_ms"`
	ChanRaw    [rcChannelCount]uint16 `json:"chan_raw"`
	ChanCount  uint8                  `json:"chan_count"`
	RSSI       uint8                  `json:"rssi"`
}

// MarshalJSON renders r's named fields as a fixed 18-element chan_raw
// array rather than 18 separate chanN_raw fields, which the wire format
// needs but a rendered record doesn't.
func (r RCChannels) MarshalJSON() ([]byte, error) {
	var wire rcChannelsJSON
	wire.TimeBootMs = r.TimeBootMs()
	for n := 1; n <= rcChannelCount; n++ {
		wire.ChanRaw[n-1] = r.ChanRaw(n)
	}
	wire.ChanCount = r.ChanCount()
	wire.RSSI = r.RSSI()
	return json.Marshal(wire)
}

// UnmarshalJSON parses the shape MarshalJSON produces.
func (r *RCChannels) UnmarshalJSON(data []byte) error {
	var wire rcChannelsJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*r = BuildRCChannels(wire.TimeBootMs, wire.ChanRaw, wire.ChanCount, wire.RSSI)
	return nil
}
