package main

import "s3bench/cmd"

func main() {
	cmd.Execute()
}
