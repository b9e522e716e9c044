package entities

// Vehicle is the upstream fleet record. Immutable once fetched for the
// duration of a wizard session.
type Vehicle struct {
	VehicleID       int    `json:"vehicle_id"`
	Name            string `json:"name"`
	Seats           int    `json:"seats"`
	LuggageCapacity int    `json:"luggageCapacity"`

	USBPowerOutlets             bool `json:"usbPowerOutlets"`
	ColoredAccentLights         bool `json:"coloredAccentLights"`
	DeluxeAudioSystem           bool `json:"deluxeAudioSystem"`
	ForwardSeatingWithSeatBelts bool `json:"forwardSeatingWithSeatBelts"`
	RearHeatACControls          bool `json:"rearHeatACControls"`
	EleganceStylish             bool `json:"eleganceStylish"`
	ExtraLegroomComfortable     bool `json:"extraLegroomComfortable"`
}

// FeatureLabels maps the set flags to their display names, in fixed order.
func (v Vehicle) FeatureLabels() []string {
	var features []string
	if v.USBPowerOutlets {
		features = append(features, "USB Power")
	}
	if v.ColoredAccentLights {
		features = append(features, "Ambient Lighting")
	}
	if v.DeluxeAudioSystem {
		features = append(features, "Premium Audio")
	}
	if v.ForwardSeatingWithSeatBelts {
		features = append(features, "Forward Seating")
	}
	if v.RearHeatACControls {
		features = append(features, "Dual Climate Control")
	}
	if v.EleganceStylish {
		features = append(features, "Luxury Interior")
	}
	if v.ExtraLegroomComfortable {
		features = append(features, "Extra Legroom")
	}
	return features
}

// VehicleImage is one entry of a vehicle's gallery. At most one image per
// vehicle carries IsDefault; when none does, the first image is the
// effective default.
type VehicleImage struct {
	ImageID   int    `json:"image_id"`
	ImageURL  string `json:"image_url"`
	IsDefault bool   `json:"is_default"`
}
