package config

// Version is overridden at build time with -ldflags "-X".
var Version = "0.9.0"
