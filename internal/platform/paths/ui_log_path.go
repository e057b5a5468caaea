package paths

func UILogFilePath() (string, error) {
	return appFile("ui.log")
}
