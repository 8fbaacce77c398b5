package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"

	"gopkg.in/yaml.v3"
)

// PolicyFile is the YAML shape of a policy. Omitted keys keep their defaults.
//
//	origin:
//	  latitude: 34.1463
//	  longitude: 73.2117
//	service_radius_km: 10
//	base_fee: 50
//	per_km_rate: 10
//	fallback_speed_kmh: 30
//	prep_buffer_seconds: 900
//	traffic_timeout_seconds: 5
type PolicyFile struct {
	Origin *struct {
		Latitude  *float64 `yaml:"latitude"`
		Longitude *float64 `yaml:"longitude"`
	} `yaml:"origin"`
	ServiceRadiusKm       *float64 `yaml:"service_radius_km"`
	BaseFee               *int     `yaml:"base_fee"`
	PerKmRate             *float64 `yaml:"per_km_rate"`
	FallbackSpeedKmh      *float64 `yaml:"fallback_speed_kmh"`
	PrepBufferSeconds     *float64 `yaml:"prep_buffer_seconds"`
	TrafficTimeoutSeconds *float64 `yaml:"traffic_timeout_seconds"`
}

// Settings overlays the file onto policy.DefaultSettings. An origin block must
// carry both coordinates.
func (f PolicyFile) Settings() (policy.Settings, error) {
	s := policy.DefaultSettings()
	if f.Origin != nil {
		if err := errors.Join(
			requiredCoordinate("origin latitude", f.Origin.Latitude),
			requiredCoordinate("origin longitude", f.Origin.Longitude),
		); err != nil {
			return policy.Settings{}, err
		}
		s.OriginLatitude = *f.Origin.Latitude
		s.OriginLongitude = *f.Origin.Longitude
	}
	if f.ServiceRadiusKm != nil {
		s.ServiceRadiusKm = *f.ServiceRadiusKm
	}
	if f.BaseFee != nil {
		s.BaseFee = *f.BaseFee
	}
	if f.PerKmRate != nil {
		s.PerKmRate = *f.PerKmRate
	}
	if f.FallbackSpeedKmh != nil {
		s.FallbackSpeedKmh = *f.FallbackSpeedKmh
	}
	if f.PrepBufferSeconds != nil {
		s.PrepBuffer = seconds(*f.PrepBufferSeconds)
	}
	if f.TrafficTimeoutSeconds != nil {
		s.TrafficTimeout = seconds(*f.TrafficTimeoutSeconds)
	}
	return s, nil
}

// LoadPolicyFile reads a policy from path. An empty path gives the defaults.
func LoadPolicyFile(path string) (policy.Settings, error) {
	if path == "" {
		return policy.DefaultSettings(), nil
	}

	var f PolicyFile
	if err := decodeYAMLFile(path, &f); err != nil {
		return policy.Settings{}, fmt.Errorf("config: %w", err)
	}
	s, err := f.Settings()
	if err != nil {
		return policy.Settings{}, fmt.Errorf("config: %w", err)
	}
	return s, nil
}

// decodeYAMLFile rejects unknown keys so typos do not silently fall back to
// defaults. An empty file decodes to the zero value.
func decodeYAMLFile(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err = dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
