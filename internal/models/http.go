package models

// UserAgent is sent with every outgoing request to external identity providers.
const UserAgent = "focuslearn/1.0 (+https://github.com/UnknownOlympus/focuslearn)"
