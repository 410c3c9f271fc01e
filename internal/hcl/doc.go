// Package hcl provides the HCL implementation of config.Loader. Settings
// files are plain attribute bodies. The environment is available as the env
// object and through the env() function, which tolerates unset variables:
//
//	command  = "./gradlew"
//	args     = [":runClient"]
//	run_dir  = env.QUARTZ_RUN_DIR
//	run_mode = env("QUARTZ_TEST_RUN_MODE", "Automatic")
package hcl
