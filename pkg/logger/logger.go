package logger

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog  *log.Logger
	ErrorLog *log.Logger
	WarnLog  *log.Logger
	logFile  *os.File

	// console receives INFO and WARN output.
	console io.Writer = os.Stdout
)

const flags = log.Ldate | log.Ltime

// InitLogger tees every level into filename in addition to the console.
// Errors keep going to stderr so that write failures stay visible when
// stdout carries the generated script.
func InitLogger(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	Close()
	logFile = f
	Init()
	return nil
}

// ConsoleToStderr moves INFO and WARN console output to stderr, keeping any
// log file. Used when stdout carries the generated script. The returned func
// puts the previous console back.
func ConsoleToStderr() (restore func()) {
	prev := console
	console = os.Stderr
	Init()
	return func() {
		console = prev
		Init()
	}
}

// SetOutput points INFO/WARN at out and ERROR at errOut.
func SetOutput(out, errOut io.Writer) {
	InfoLog = log.New(out, "INFO: ", flags)
	WarnLog = log.New(out, "WARN: ", flags)
	ErrorLog = log.New(errOut, "ERROR: ", flags)
}

// Close releases the log file and falls back to console-only output.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
		Init()
	}
}

func Init() {
	if logFile == nil {
		SetOutput(console, os.Stderr)
		return
	}
	SetOutput(io.MultiWriter(console, logFile), io.MultiWriter(os.Stderr, logFile))
}

func Info(format string, v ...interface{}) {
	if InfoLog == nil {
		Init()
	}
	InfoLog.Printf(format, v...)
}

func Infof(format string, v ...interface{}) {
	Info(format, v...)
}

func Error(format string, v ...interface{}) {
	if ErrorLog == nil {
		Init()
	}
	ErrorLog.Printf(format, v...)
}

func Errorf(format string, v ...interface{}) {
	Error(format, v...)
}

func Warn(format string, v ...interface{}) {
	if WarnLog == nil {
		Init()
	}
	WarnLog.Printf(format, v...)
}

func Warnf(format string, v ...interface{}) {
	Warn(format, v...)
}
