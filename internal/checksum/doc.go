// Package checksum fingerprints catalog documents.
//
// Two checksums are produced for a document:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing comments and processing
//     instructions and collapsing insignificant whitespace
//
// # Normalization Strategy
//
// Normalization makes checksums resilient to formatting changes:
//  1. Drop XML comments and processing instructions, including the XML declaration
//  2. Drop whitespace between tags and inside tags before > or />
//  3. Collapse remaining whitespace runs in text to single spaces
//  4. Keep attribute values and CDATA sections verbatim
//
// Two exports of the same catalog that differ only in indentation or in
// their declared encoding therefore share a normalized checksum.
//
// CalculateCatalog fingerprints an in-memory catalog by serializing it as
// BMECat 2005 first, ignoring GENERATOR_INFO.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
