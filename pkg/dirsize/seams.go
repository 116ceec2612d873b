package dirsize

import "os"

type osDirEntry = os.DirEntry

var (
	osStat    = os.Stat
	osReadDir = os.ReadDir
)
