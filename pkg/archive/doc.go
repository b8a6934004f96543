// Package archive bundles the entries of a job upload into a zip archive.
//
// The second phase of an image-carrying submission PUTs a single zip to a
// one-time upload URL. The bundle holds the info.json manifest plus every
// file-backed image; inline base64 images travel inside the manifest and
// are not duplicated as archive entries.
package archive
