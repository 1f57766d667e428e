package native

import (
	"bufio"
	"errors"
	"os"
	"os/user"
	"strconv"
	"strings"
)

var ErrNoSuchID = errors.New("no such id")

// Database resolves numeric ids using the files of the system account
// database. Ids missing from the files are looked up with os/user, which
// also covers directory services (NSS, Open Directory).
type Database struct {
	PasswdFile string
	GroupFile  string
}

func NewDatabase() *Database {
	return &Database{
		PasswdFile: "/etc/passwd",
		GroupFile:  "/etc/group",
	}
}

// UserName returns the login name of uid.
func (db *Database) UserName(uid uint32) (string, error) {
	// alice:x:1005:1006::/home/alice:/usr/bin/bash
	name, err := scanIDFile(db.PasswdFile, 7, 6, uid)
	if err == nil {
		return name, nil
	}

	if u, err := user.LookupId(strconv.FormatUint(uint64(uid), 10)); err == nil {
		return u.Username, nil
	}

	return "", err
}

// GroupName returns the name of gid.
func (db *Database) GroupName(gid uint32) (string, error) {
	// wheel:*:0:root
	name, err := scanIDFile(db.GroupFile, 4, 4, gid)
	if err == nil {
		return name, nil
	}

	if g, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10)); err == nil {
		return g.Name, nil
	}

	return "", err
}

func scanIDFile(fname string, nfields, minFields int, id uint32) (string, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer fd.Close()

	scanner := bufio.NewScanner(fd)

	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", nfields)

		// If the file contains +foo and you search for "foo", glibc
		// returns an "invalid argument" error. Similarly, if you search
		// for an id for a row where the name starts with "+" or "-",
		// glibc fails to find the record.
		if len(parts) < minFields || parts[0] == "" || parts[0][0] == '+' || parts[0][0] == '-' {
			continue
		}

		v, err := strconv.ParseUint(parts[2], 10, 32)
		if err != nil {
			continue
		}

		if uint32(v) == id {
			return parts[0], nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", ErrNoSuchID
}
