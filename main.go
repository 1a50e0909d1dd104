package main

import "task-board.community/task-board/cmd"

func main() {
	cmd.Execute()
}
