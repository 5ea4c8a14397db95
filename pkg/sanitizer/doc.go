// Package sanitizer cleans user input before it is stored and masks personal
// data before it is logged.
//
// Functions are stateless and combine through Apply and Compose:
//
//	sanitizer.PersonName("  Ana\tSouza\x00 ")            // "Ana Souza"
//	sanitizer.NormalizeEmail(" Ana..Souza@Example.com") // "ana.souza@example.com"
//	sanitizer.FormatDocument("11144477735")             // "111.444.777-35"
//	sanitizer.MaskDocument("11144477735")               // "***.444.777-**"
package sanitizer
