package domain

const (
	// MilliPerCycle is the length of one simulation cycle.
	MilliPerCycle = 200

	ServerFortifyAmount = 0.002
	ServerWeakenAmount  = 0.05

	IntelligenceTerminalHackBaseExpGain = 200

	// ActionEpsilon is the remaining time under which an action is finished.
	ActionEpsilon = 0.01

	MaxHistoryEntries = 50

	DefaultMaxTerminalCapacity = 500

	// ManualGrowThreads is the effective thread count of a terminal grow.
	ManualGrowThreads = 25

	ProgressBarTicks = 50

	CodingContractBaseFactionRepGain = 2500
	CodingContractBaseCompanyRepGain = 4000
	CodingContractBaseMoneyGain      = 75e6
)

const (
	HomeHostname        = "home"
	DarkwebHostname     = "darkweb"
	WorldDaemonHostname = "w0r1d_d43m0n"
	TutorialHostname    = "n00dles"
)

const (
	ProgramNuke       = "NUKE.exe"
	ProgramBruteSSH   = "BruteSSH.exe"
	ProgramFTPCrack   = "FTPCrack.exe"
	ProgramRelaySMTP  = "relaySMTP.exe"
	ProgramHTTPWorm   = "HTTPWorm.exe"
	ProgramSQLInject  = "SQLInject.exe"
	ProgramAutoLink   = "AutoLink.exe"
	ProgramDeepscanV1 = "DeepscanV1.exe"
	ProgramDeepscanV2 = "DeepscanV2.exe"
)
