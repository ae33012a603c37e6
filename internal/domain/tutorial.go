package domain

type TutorialStep int

const (
	TutorialStart TutorialStep = iota
	TutorialGoToCharacterPage
	TutorialCharacterPage
	TutorialCharacterGoToTerminalPage
	TutorialTerminalIntro
	TutorialTerminalHelp
	TutorialTerminalLs
	TutorialTerminalScan
	TutorialTerminalScanAnalyze1
	TutorialTerminalScanAnalyze2
	TutorialTerminalConnect
	TutorialTerminalAnalyze
	TutorialTerminalNuke
	TutorialTerminalManualHack
	TutorialTerminalHackingMechanics
	TutorialTerminalGoHome
	TutorialTerminalCreateScript
	TutorialTerminalTypeScript
	TutorialTerminalFree
	TutorialTerminalRunScript
	TutorialTerminalGoToActiveScriptsPage
	TutorialActiveScriptsPage
	TutorialActiveScriptsToTerminal
	TutorialTerminalTailScript
	TutorialEnd
)
