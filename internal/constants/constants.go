package constants

var Version = "0.1.0-dev"
