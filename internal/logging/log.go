// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logging is a minimal, dependency-free log writer shared by the
// stacking pipeline and its CLI driver. It writes to stdout and, optionally,
// mirrors to a log file. It does not add prefixes or force newlines.
package logging

import (
	"bufio"
	"fmt"
	"os"
)

var logFile *bufio.Writer
var logFileOS *os.File

// AlsoToFile duplicates all subsequent log output into fileName, truncating
// any previous content. Closes a previously opened log file first.
func AlsoToFile(fileName string) error {
	if logFile != nil {
		if err := logFile.Flush(); err != nil {
			return err
		}
		if err := logFileOS.Close(); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	logFileOS = f
	logFile = bufio.NewWriter(logFileOS)
	return nil
}

func Print(args ...interface{}) {
	fmt.Print(args...)
	if logFile != nil {
		fmt.Fprint(logFile, args...)
	}
}

func Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	if logFile != nil {
		fmt.Fprintf(logFile, format, args...)
	}
}

func Println(args ...interface{}) {
	fmt.Println(args...)
	if logFile != nil {
		fmt.Fprintln(logFile, args...)
	}
}

// Fatalf prints to the log and exits with code 1. Used only for usage and
// load errors, per the error handling design: alignment and threshold
// failures are absorbed by the caller instead.
func Fatalf(format string, args ...interface{}) {
	Printf(format, args...)
	Sync()
	os.Exit(1)
}

// Sync flushes and syncs the optional log file, if one is open.
func Sync() {
	if logFile == nil {
		return
	}
	logFile.Flush()
	logFileOS.Sync()
}
