package conf

type Config struct {
	Shell string
	Sources
	Log
}

// Sources points at the kernel and distribution text files a gather pass
// reads. Empty fields fall back to the standard locations.
type Sources struct {
	OSReleasePath string
	MemInfoPath   string
	UptimePath    string
}

type Log struct {
	Level string
	File  string
	Dev   bool
}
