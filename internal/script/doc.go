// Package script materializes build command lists as files.
//
// A Writer picks a file name made of a fixed prefix and a random decimal
// suffix, skips names already listed in the folder, and creates the file
// with an exclusive create (O_CREATE|O_EXCL). If another process claimed
// the name in between, a new name is drawn. The file holds the commands
// joined by "\n" and is created without the executable bit:
//
//	w := script.NewWriter()
//	artifact, err := w.Write([]string{"cargo build --release"}, f)
//	// artifact.Name == "f8310485017512036021"
//
// Ownership of the file passes to the caller; nothing here runs or
// removes it.
package script
