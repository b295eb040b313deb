package workspace

// Stage is a step of Init that has completed. Init only moves forward; a
// failure at any stage is returned immediately and nothing resumes it.
type Stage int

const (
	StageNotStarted Stage = iota
	StageCollisionChecked
	StageRootCreated
	StageExercisesExtracted
	StageManifestWritten
	StageAuxFilesWritten
)

func (s Stage) String() string {
	switch s {
	case StageNotStarted:
		return "not-started"
	case StageCollisionChecked:
		return "collision-checked"
	case StageRootCreated:
		return "root-created"
	case StageExercisesExtracted:
		return "exercises-extracted"
	case StageManifestWritten:
		return "manifest-written"
	case StageAuxFilesWritten:
		return "aux-files-written"
	default:
		return "unknown"
	}
}
