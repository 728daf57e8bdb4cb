// Package fsfault classifies filesystem and object storage faults.
//
// Errors carrying an OS error number keep it: they map into the "system"
// category with the errno as the value, so a code read back by the caller
// compares equal to Errno(syscall.ENOENT) and prints the OS message. Faults
// without an errno (io/fs and go-billy sentinels, MinIO S3 responses) map
// into the "filesystem" category.
package fsfault
