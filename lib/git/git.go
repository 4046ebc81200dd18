package git

import (
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

var remoteRegex = regexp.MustCompile(`(?:(?:.*?\@.*?\..*?\:)|(?:https\:\/\/.*?\..*?\/))(?P<User>.*?)\/(?P<Repo>.*?)\.git`)

func execGit(path string, cmd ...string) ([]byte, error) {
	args := []string{"-C", path}
	args = append(args, cmd...)
	return exec.Command("git", args...).Output()
}

func IsRepo(path string) bool {
	_, err := execGit(path, "rev-parse", "--git-dir")
	return err == nil
}

// RepoName resolves <user>/<repo> from the origin remote URL,
// falling back to the directory name when there is no usable remote
func RepoName(path string) (string, error) {
	out, err := execGit(path, "remote", "get-url", "origin")
	if err == nil {
		remoteURL := strings.Trim(string(out), " \n")
		if !strings.HasSuffix(remoteURL, ".git") {
			remoteURL += ".git"
		}
		if match := matchParams(remoteRegex, remoteURL); match["User"] != "" {
			return match["User"] + "/" + match["Repo"], nil
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

func CurrentBranch(path string) (string, error) {
	branch, err := execGit(path, "branch", "--show-current")
	return strings.TrimSpace(string(branch)), err
}

func LastCommit(path string) (CommitInfo, error) {
	hash, err := execGit(path, "log", "-1", "--format=format:%h")
	if err != nil {
		return CommitInfo{}, err
	}
	message, err := execGit(path, "log", "-1", "--format=format:%s")
	if err != nil {
		return CommitInfo{}, err
	}
	author, err := execGit(path, "log", "-1", "--format=format:%an <%ae>")
	if err != nil {
		return CommitInfo{}, err
	}
	return CommitInfo{
		Hash:    string(hash),
		Message: string(message),
		Author:  string(author),
	}, nil
}

// HasLocalChanges reports whether the working tree has anything to stage
func HasLocalChanges(path string) (bool, error) {
	out, err := execGit(path, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) != "", nil
}

func GetAllMetadata(path string) (Metadata, error) {
	if !IsRepo(path) {
		return Metadata{IsRepo: false}, nil
	}

	name, err := RepoName(path)
	if err != nil {
		return Metadata{IsRepo: true}, err
	}

	branch, err := CurrentBranch(path)
	if err != nil {
		return Metadata{IsRepo: true}, err
	}

	commit, err := LastCommit(path)
	if err != nil {
		return Metadata{IsRepo: true}, err
	}

	dirty, err := HasLocalChanges(path)
	if err != nil {
		return Metadata{IsRepo: true}, err
	}

	return Metadata{
		IsRepo:          true,
		RepoName:        name,
		Branch:          branch,
		Commit:          commit,
		HasLocalChanges: dirty,
	}, nil
}

/**
 * Parses url with the given regular expression and returns the
 * group values defined in the expression.
 */
func matchParams(re *regexp.Regexp, test string) map[string]string {
	match := re.FindStringSubmatch(test)

	params := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if i > 0 && i <= len(match) {
			params[name] = match[i]
		}
	}
	return params
}
