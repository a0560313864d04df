// Package publisher uploads an asset's media files and its metadata document
// to object storage and returns the public URLs of all three.
//
// Publish runs the uploads one after another: the image, then the optional
// animation, then the metadata document rewritten to reference the two media
// URLs. Every object is stored under a fresh random key and is publicly
// readable.
//
// # Failure policy
//
// Under the default BestEffort policy a failed storage write is logged,
// reported and otherwise ignored: Publish still returns the URL the object
// would have had. A returned URL therefore means "upload attempted", not
// "object stored". Callers that need confirmation use the Propagate policy,
// which turns the first failed write into an error.
//
// Local file errors and malformed metadata always fail Publish. Objects
// written before the failure are left in place.
package publisher
