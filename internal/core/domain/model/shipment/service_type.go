package shipment

import (
	"fmt"

	"opsboard/internal/pkg/errs"
)

// ServiceType represents the delivery service level booked for a shipment.
type ServiceType int

const (
	// ServiceUnknown represents an invalid or undefined service type.
	ServiceUnknown ServiceType = iota

	// ServiceStandard is the default multi-day service.
	ServiceStandard

	// ServiceExpress is the expedited service.
	ServiceExpress

	// ServiceSameDay is the same-day courier service.
	ServiceSameDay
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceUnknown:  "unknown",
		ServiceStandard: "standard",
		ServiceExpress:  "express",
		ServiceSameDay:  "same-day",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceStandard: "standard",
		ServiceExpress:  "express",
		ServiceSameDay:  "same-day",
	}
}

// ServiceTypeFromString parses a wire representation ("standard", "express",
// "same-day") into a ServiceType.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for st, str := range getValidServiceTypeStrings() {
		if str == s {
			return st, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"serviceType",
		fmt.Errorf("%q is not a valid service type", s),
	)
}

// Validate checks if the ServiceType is a member of the valid set.
func (s ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType",
			fmt.Errorf("%d is not a valid service type", s),
		)
	}
	return nil
}

// String returns the wire name of the service type. Implements fmt.Stringer.
func (s ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
