package cli

// Version is the tool version checked against a config's requires field
const Version = "v0.3.0"
