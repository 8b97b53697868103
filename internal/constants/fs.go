package constants

import "os"

// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
// Owner: read and write;
// Group: read;
// Others: read.
const DefaultFilePermissions os.FileMode = 0o644
