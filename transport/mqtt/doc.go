// Package mqtt serves an operation registry over MQTT.
//
// Requests are read from "<prefix>/<device>/command":
//
//	{"id":"42","method":"call","name":"tap","arguments":{"x":100,"y":200}}
//
// and replies are published to "<prefix>/<device>/response". The "list" method
// returns the operation descriptors.
package mqtt
