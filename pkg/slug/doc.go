// Package slug generates URL-safe slugs from arbitrary strings.
//
// Route files use it to derive names for entries that do not declare one, so each
// path segment becomes a readable identifier: "Crear Facturas" gives "crear-facturas".
//
// # Usage
//
//	slug.Make("Hello, World!")        // "hello-world"
//	slug.Make("Straße in München")    // "strasse-in-munchen"
//	slug.Make("Product Name",
//		slug.Separator("_"),
//		slug.Lowercase(false),
//	) // "Product_Name"
//
// # Options
//
//   - Separator: string placed between words (default "-")
//   - Lowercase: case folding (default true)
//   - MaxLength: limit in runes, suffix and its separator included
//   - WithSuffix: random lowercase alphanumeric suffix of n characters
//   - CustomReplace: substring replacements applied first, longest key first
//   - StripChars: characters removed instead of turned into separators
//
//	slug.Make("C++ & Go", slug.CustomReplace(map[string]string{"C++": "cpp", "&": "and"}))
//	// "cpp-and-go"
//
//	slug.Make("Price: $100.00", slug.StripChars("$:"))
//	// "price-100-00"
//
// # Diacritics
//
// Input is decomposed (NFD) with golang.org/x/text, combining marks are dropped and
// letters without a decomposition (ß, æ, ø, ł, ...) are spelled out, so "ñandú"
// becomes "nandu". Letters outside ASCII after folding, such as Cyrillic or CJK,
// act as separators.
//
// Make never fails: input without any ASCII letters or digits produces an empty
// string, or the suffix alone when WithSuffix is set.
package slug
