package lxinfo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sys/unix"
)

// IdentityKind selects which identity field GetIdentity reports.
type IdentityKind int

const (
	// Username is the user owning the current login session.
	Username IdentityKind = iota
	// HostName is the kernel node name.
	HostName
	// KernelVersion is the kernel release string, e.g. "6.18.5-arch1-1".
	KernelVersion
	// Machine is the hardware architecture string, e.g. "x86_64".
	Machine
)

// ErrNoLoginName reports an empty login session table.
var ErrNoLoginName = errors.New("no login name available")

// GetIdentity returns one host identity field. Username comes from the
// utmp session table, the same record getlogin(3) consults; the rest come
// from a uname call whose fixed-size fields are truncated at the first
// NUL byte.
func GetIdentity(kind IdentityKind) (string, error) {
	if kind == Username {
		return loginName()
	}

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("failed to query uname: %w", err)
	}

	switch kind {
	case HostName:
		return bufToString(uts.Nodename[:]), nil
	case KernelVersion:
		return bufToString(uts.Release[:]), nil
	case Machine:
		return bufToString(uts.Machine[:]), nil
	}
	return "", fmt.Errorf("unknown identity kind %d", kind)
}

func loginName() (string, error) {
	users, err := host.Users()
	if err != nil {
		return "", fmt.Errorf("failed to read login sessions: %w", err)
	}

	for _, u := range users {
		if u.User != "" {
			return u.User, nil
		}
	}
	return "", ErrNoLoginName
}

// bufToString decodes a fixed-size uname field, dropping the first NUL
// and everything after it. A field with no NUL is taken whole.
func bufToString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
