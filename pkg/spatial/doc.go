// Package spatial provides frame-tagged geometric values (points, vectors,
// unit quaternions), frame-to-frame transforms, and unit-tagged scalar
// quantities. The coordinate frame or physical unit of every value is carried
// as a type parameter, so mixing frames or units is a compile error rather
// than a runtime surprise. The tags are phantom: they occupy no storage and
// cost nothing at runtime.
// See docs/ARCHITECTURE.md § Core Library.
package spatial
