// Package androidmcp wires the Android device command channel, the operation registry
// and its transports into a runnable service.
//
// Configuration comes from command line flags and an optional YAML file that can live
// at any afs URL; flags win over file values:
//
//	android-mcp -s emulator-5554 -T streamable -a :5000
//	android-mcp -c s3://bucket/android-mcp.yaml --mqtt.broker tcp://broker:1883
package androidmcp
