package paths

func LoggerFilePath() (string, error) {
	return appFile("server.log")
}
