package errors

import "errors"

// Registry error taxonomy. DuplicateAsset, PermissionDenied and
// ElevatedPrivileges are reserved kinds: defined for forward compatibility,
// not raised by any current operation.
var (
	ErrAssetNotFound      = errors.New("asset record not found")
	ErrDuplicateAsset     = errors.New("asset id already registered")
	ErrInvalidAttributes  = errors.New("asset name or attribute schema length out of bounds")
	ErrCapacityThreshold  = errors.New("payload size outside allowed range")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrOwnershipConflict  = errors.New("caller is not the owner of the asset record")
	ErrElevatedPrivileges = errors.New("elevated privileges required")
	ErrAccessRestricted   = errors.New("caller lacks authorization to read the asset record")
	ErrTagVerification    = errors.New("tag sequence failed attribute verification")
)
