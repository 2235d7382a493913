package main

import "github.com/NghiemLg/Blender-to-gazebo/internal/cmd"

func main() {
	cmd.Parse()
}
