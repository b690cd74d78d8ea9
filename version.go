package main

// _version is the version of durchen-annotate.
// Release builds override this with -ldflags.
var _version = "dev"
