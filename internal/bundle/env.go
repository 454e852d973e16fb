package bundle

import "strconv"

// ProductionEnv is the process.env table of production builds.
func ProductionEnv() map[string]string {
	return map[string]string{"NODE_ENV": strconv.Quote("production")}
}

// DevelopmentEnv overlays NODE_ENV=development and extra onto the production
// table. Values of extra are raw strings and are quoted so that the bundler
// inlines them as string literals; keys of extra win over the defaults
// except NODE_ENV.
func DevelopmentEnv(extra map[string]string) map[string]string {
	env := ProductionEnv()
	for k, v := range extra {
		env[k] = strconv.Quote(v)
	}
	env["NODE_ENV"] = strconv.Quote("development")
	return env
}
