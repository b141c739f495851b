// Package scanner discovers BMECat catalogs in a directory tree.
//
// Every *.xml file is sniffed for a BMECAT root element. Catalog files are
// reported with their dialect, size, modification time and a raw SHA-256
// checksum; other XML files are listed as skipped. Files are sniffed
// concurrently.
//
// The scanner reads through an fs.FS so it can run against os.DirFS in
// production and fstest.MapFS in tests.
package scanner
