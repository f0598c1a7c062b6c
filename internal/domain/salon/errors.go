package salon

import (
	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var (
	ErrSalonNotFound    = httperr.ErrNotFound("salon_not_found", "Salon not found")
	ErrNotOwner         = httperr.ErrForbidden("access_denied", "Access denied")
	ErrServiceNotFound  = httperr.ErrNotFound("service_not_found", "Service not found")
	ErrOfferingExists   = httperr.ErrConflict("service_already_offered", "Service already exists for this salon")
	ErrOfferingNotFound = httperr.ErrNotFound("offering_not_found", "Service not found")
	ErrImageNotFound    = httperr.ErrNotFound("image_not_found", "Image not found")
	ErrCodigoTaken      = httperr.ErrConflict("codigo_already_registered", "Customer code already registered")
	ErrUnknownCodigo    = httperr.ErrInvalid("invalid_customer_code", "Unknown customer code")
	ErrInvalidPrice     = httperr.ErrInvalid("invalid_price", "Price must not be negative")
	ErrInvalidDuration  = httperr.ErrInvalid("invalid_duration", "Duration must be a positive number of minutes")
)
